package search_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Resguardos-api/internal/domain/search"
)

func TestDebouncer_SinRetardoEjecutaDeInmediato(t *testing.T) {
	d := search.NewDebouncer(0)
	ran := false
	d.Trigger(func() { ran = true })
	assert.True(t, ran)
	assert.False(t, d.Pending())
}

func TestDebouncer_SoloLaUltimaLlamada(t *testing.T) {
	d := search.NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Value
	for _, term := range []string{"s", "si", "sil", "silla"} {
		term := term
		d.Trigger(func() {
			calls.Add(1)
			last.Store(term)
		})
	}
	assert.True(t, d.Pending())

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "silla", last.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_StopCancela(t *testing.T) {
	d := search.NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	assert.False(t, d.Pending())
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, calls.Load())
}
