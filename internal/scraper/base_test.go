package scraper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJob_IsEmpty(t *testing.T) {
	assert.True(t, Job{}.IsEmpty())
	assert.False(t, Job{Title: "Backend"}.IsEmpty())
	assert.False(t, Job{Description: "x\n"}.IsEmpty())
	assert.False(t, Job{Requirements: "y\n"}.IsEmpty())
}

func TestJob_JSONKeys(t *testing.T) {
	data, err := json.Marshal(Job{Title: "a", Description: "b", Requirements: "c"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"job_title":"a","job_description":"b","job_requirements":"c"}`, string(data))
}
