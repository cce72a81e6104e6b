package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/habitpulse/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUp(t *testing.T) {
	order := make([]string, 0, 3)
	job := func(name string, err error) *cleanup.Job {
		return &cleanup.Job{Name: name, F: func() error {
			order = append(order, name)
			return err
		}}
	}
	cleanup.Register(job("pool", nil))
	cleanup.Register(job("broken", errors.New("boom")))
	cleanup.Register(job("server", nil))

	cleanup.CleanUp()
	assert.Equal(t, []string{"server", "broken", "pool"}, order)

	// jobs run only once
	cleanup.CleanUp()
	assert.Len(t, order, 3)
}
