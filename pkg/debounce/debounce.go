package debounce

import (
	"sync"
	"time"
)

// Debouncer difiere una acción hasta que una ráfaga de eventos se detiene
// durante el intervalo configurado. Cada Trigger reinicia el temporizador, de
// modo que solo la última acción de la ráfaga llega a ejecutarse. Es un
// contrato de timing, no de corrección: cualquier valor termina llegando.
// Independiente de todo ciclo de vida de UI; seguro para uso concurrente.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New construye un Debouncer con el intervalo dado.
func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger programa fn para ejecutarse cuando pase el intervalo sin un nuevo
// Trigger. Una llamada posterior dentro del intervalo cancela la anterior.
// fn se ejecuta en una goroutine del timer.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancela cualquier acción pendiente. Devuelve true si había una
// pendiente que no llegó a ejecutarse.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}
