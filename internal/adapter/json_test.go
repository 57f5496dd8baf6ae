package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-collection-launch/internal/adapter"
)

func TestRealJSON_MarshalCanonical(t *testing.T) {
	j := adapter.NewJSON()

	a, err := j.MarshalCanonical(map[string]any{"b": 1, "a": []int{2, 1}, "c": "x"})
	require.NoError(t, err)
	assert.Equal(t, `{"a":[2,1],"b":1,"c":"x"}`, string(a))

	type record struct {
		Zeta  string `json:"zeta"`
		Alpha int    `json:"alpha"`
	}
	b, err := j.MarshalCanonical(record{Zeta: "z", Alpha: 1})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":1,"zeta":"z"}`, string(b))

	var decoded record
	require.NoError(t, j.Unmarshal(b, &decoded))
	assert.Equal(t, record{Zeta: "z", Alpha: 1}, decoded)

	_, err = j.MarshalCanonical(make(chan int))
	assert.Error(t, err)
}
