package debounce_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-terminal/pkg/debounce"
)

// recorder acumula los valores que llegaron a ejecutarse.
type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) add(v string) func() {
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.values = append(r.values, v)
	}
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

// Una ráfaga de triggers colapsa en una sola ejecución con el último valor.
func TestDebouncer_RafagaColapsaEnElUltimoValor(t *testing.T) {
	d := debounce.New(30 * time.Millisecond)
	rec := &recorder{}

	for _, v := range []string{"l", "le", "lec", "lech", "leche"} {
		d.Trigger(rec.add(v))
		time.Sleep(5 * time.Millisecond) // dentro del intervalo: reinicia el timer
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{"leche"}, rec.snapshot(), "solo la última acción de la ráfaga se ejecuta")
}

// Tras ejecutarse, una nueva ráfaga vuelve a disparar: cualquier valor termina
// llegando (contrato de timing, no de corrección).
func TestDebouncer_NuevaRafagaVuelveADisparar(t *testing.T) {
	d := debounce.New(20 * time.Millisecond)
	rec := &recorder{}

	d.Trigger(rec.add("primera"))
	time.Sleep(60 * time.Millisecond)

	d.Trigger(rec.add("segunda"))
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, []string{"primera", "segunda"}, rec.snapshot())
}

func TestDebouncer_StopCancelaLaPendiente(t *testing.T) {
	d := debounce.New(30 * time.Millisecond)
	rec := &recorder{}

	d.Trigger(rec.add("cancelada"))
	stopped := d.Stop()

	assert.True(t, stopped, "había una acción pendiente")
	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestDebouncer_StopSinPendienteDevuelveFalse(t *testing.T) {
	d := debounce.New(30 * time.Millisecond)
	assert.False(t, d.Stop())
}
