package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
	hlerrors "github.com/pooofdevelopment/go-hl-client/pkg/errors"
)

func TestClassify(t *testing.T) {
	seen := map[string]SigningMode{}

	for _, a := range hashBasedSamples() {
		mode, err := Classify(a)
		require.NoError(t, err, a.Type())
		assert.Equal(t, ModeHashBased, mode, a.Type())
		seen[a.Type()] = mode
	}
	for _, a := range typedDataSamples() {
		mode, err := Classify(a)
		require.NoError(t, err, a.Type())
		assert.Equal(t, ModeTypedData, mode, a.Type())
		_, dup := seen[a.Type()]
		assert.False(t, dup, "%s classified twice", a.Type())
		seen[a.Type()] = mode
	}

	// every registered action type has exactly one mode
	for _, typ := range actions.Types() {
		_, ok := seen[typ]
		assert.True(t, ok, "no classification sample for %s", typ)
	}
	assert.Len(t, seen, len(actions.Types()))
}

func TestClassifyRejects(t *testing.T) {
	tests := []struct {
		name   string
		action actions.Action
	}{
		{name: "nil", action: nil},
		{name: "pointer to hash-based action", action: &actions.SetReferrer{Code: "ABC"}},
		{name: "pointer to typed-data action", action: &actions.UsdSend{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.action)
			require.Error(t, err)
			assert.ErrorIs(t, err, hlerrors.ErrUnsupportedSigningMode)

			_, err = BuildWithNonce(tt.action, testNonce, BuildContext{})
			assert.ErrorIs(t, err, hlerrors.ErrUnsupportedSigningMode)
		})
	}
}

func TestSigningModeString(t *testing.T) {
	assert.Equal(t, "hash-based", ModeHashBased.String())
	assert.Equal(t, "typed-data", ModeTypedData.String())
	assert.Equal(t, "unknown", SigningMode(0).String())
}
