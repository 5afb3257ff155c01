package signer

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hlerrors "github.com/pooofdevelopment/go-hl-client/pkg/errors"
)

const (
	testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestNewSigner(t *testing.T) {
	tests := []struct {
		name       string
		privateKey string
		wantErr    bool
		wantAddr   string
	}{
		{
			name:       "valid private key with 0x prefix",
			privateKey: testPrivateKey,
			wantAddr:   testAddress,
		},
		{
			name:       "valid private key without 0x prefix",
			privateKey: testPrivateKey[2:],
			wantAddr:   testAddress,
		},
		{
			name:       "empty private key",
			privateKey: "",
			wantErr:    true,
		},
		{
			name:       "invalid private key",
			privateKey: "invalid",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSigner(tt.privateKey)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, s.Address().Hex())
		})
	}
}

func TestSignHash(t *testing.T) {
	s, err := NewSigner(testPrivateKey)
	require.NoError(t, err)

	hash := crypto.Keccak256Hash([]byte("hello"))
	sig, err := s.SignHash(hash)
	require.NoError(t, err)

	assert.Contains(t, []uint64{27, 28}, sig.V())
	assert.LessOrEqual(t, sig.R.BitLen(), 256)
	assert.LessOrEqual(t, sig.S.BitLen(), 256)

	again, err := s.SignHash(hash)
	require.NoError(t, err)
	assert.Equal(t, sig.Bytes(), again.Bytes(), "signing is deterministic")

	recovered, err := sig.Recover(hash)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), recovered)
}

func TestSignHashWithoutKey(t *testing.T) {
	var s *Signer
	_, err := s.SignHash(common.Hash{})
	require.Error(t, err)
	assert.ErrorIs(t, err, hlerrors.ErrSignature)
}

func TestSignatureFromBytes(t *testing.T) {
	r := make([]byte, 32)
	r[31] = 1
	sv := make([]byte, 32)
	sv[31] = 2

	tests := []struct {
		name    string
		v       byte
		length  int
		wantV   uint64
		wantErr bool
	}{
		{name: "recovery id 0", v: 0, length: 65, wantV: 27},
		{name: "recovery id 1", v: 1, length: 65, wantV: 28},
		{name: "ethereum v 27", v: 27, length: 65, wantV: 27},
		{name: "ethereum v 28", v: 28, length: 65, wantV: 28},
		{name: "bad v", v: 5, length: 65, wantErr: true},
		{name: "short", v: 0, length: 64, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := append(append(append([]byte{}, r...), sv...), tt.v)
			raw = raw[:tt.length]

			sig, err := SignatureFromBytes(raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, hlerrors.ErrSignature)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantV, sig.V())
			assert.Equal(t, big.NewInt(1), sig.R)
			assert.Equal(t, big.NewInt(2), sig.S)
		})
	}
}

func TestSignatureJSON(t *testing.T) {
	sig := Signature{R: big.NewInt(0xabc), S: big.NewInt(0x1), RecoveryID: 1}

	data, err := json.Marshal(sig)
	require.NoError(t, err)
	assert.JSONEq(t, `{"r":"0xabc","s":"0x1","v":28}`, string(data))

	var decoded Signature
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sig.R, decoded.R)
	assert.Equal(t, sig.S, decoded.S)
	assert.Equal(t, sig.RecoveryID, decoded.RecoveryID)

	require.Error(t, json.Unmarshal([]byte(`{"r":"0x1","s":"0x1","v":29}`), &decoded))
}

func TestSignatureVIsAlwaysEthereumStyle(t *testing.T) {
	sig := Signature{R: big.NewInt(1), S: big.NewInt(1), RecoveryID: 3}
	assert.Equal(t, uint64(28), sig.V())
}

func TestParseSignature(t *testing.T) {
	s, err := NewSigner(testPrivateKey)
	require.NoError(t, err)
	hash := crypto.Keccak256Hash([]byte("external"))

	raw, err := crypto.Sign(hash.Bytes(), s.privateKey)
	require.NoError(t, err)
	raw[64] += 27

	sig, err := ParseSignature(common.Bytes2Hex(raw))
	require.Error(t, err, "0x prefix is required")

	sig, err = ParseSignature("0x" + common.Bytes2Hex(raw))
	require.NoError(t, err)
	recovered, err := sig.Recover(hash)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), recovered)
}
