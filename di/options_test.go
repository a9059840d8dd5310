package di_test

import (
	"errors"
	"testing"

	"github.com/sghaida/beanbox/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotPolicy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    di.SlotPolicy
		wantErr bool
	}{
		{in: "", want: di.SlotPolicyWarn},
		{in: "warn", want: di.SlotPolicyWarn},
		{in: " ERROR ", want: di.SlotPolicyError},
		{in: "ignore", want: di.SlotPolicyIgnore},
		{in: "strict", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			got, err := di.ParseSlotPolicy(tc.in)
			if tc.wantErr {
				var pe di.InvalidSlotPolicyError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, `di: invalid slot policy "strict" (want warn|ignore|error)`, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// An unknown policy passed straight to WithSlotPolicy behaves like warn.
func TestWithSlotPolicy_UnknownFallsBackToWarn(t *testing.T) {
	t.Parallel()

	c, err := di.New([]di.Descriptor{carDesc()}, di.WithSlotPolicy("bogus"))
	require.NoError(t, err)
	assert.Len(t, c.Unresolved(), 3)
}
