package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
	"github.com/pooofdevelopment/go-hl-client/pkg/config"
	"github.com/pooofdevelopment/go-hl-client/pkg/exchange"
	"github.com/pooofdevelopment/go-hl-client/pkg/types"
)

const (
	testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testNonce      = uint64(1690393044548)
	referrerAction = `{"type":"setReferrer","code":"ABC"}`
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(config.NewViper())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func testnetDigest(t *testing.T, a actions.Action) common.Hash {
	t.Helper()
	built, err := exchange.BuildWithNonce(a, testNonce, exchange.BuildContext{Network: types.Testnet})
	require.NoError(t, err)
	return built.Digest()
}

func TestHashCmd(t *testing.T) {
	out, err := run(t, referrerAction, "hash", "--network", "testnet", "--nonce", "1690393044548")
	require.NoError(t, err)

	var got hashOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, actions.TypeSetReferrer, got.Type)
	assert.Equal(t, exchange.ModeHashBased.String(), got.Mode)
	assert.Equal(t, testNonce, got.Nonce)
	assert.NotNil(t, got.ConnectionID)
	assert.Equal(t, testnetDigest(t, actions.SetReferrer{Code: "ABC"}), got.Digest)
}

func TestSignCmd(t *testing.T) {
	t.Setenv("HL_PRIVATE_KEY", testPrivateKey)

	out, err := run(t, referrerAction, "sign", "--network", "testnet", "--nonce", "1690393044548")
	require.NoError(t, err)

	payload, err := exchange.DecodeExchangePayload([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, testNonce, payload.Nonce)

	recovered, err := payload.Signature.Recover(testnetDigest(t, actions.SetReferrer{Code: "ABC"}))
	require.NoError(t, err)
	assert.Equal(t, testAddress, recovered.Hex())
}

func TestSignCmdWithoutKey(t *testing.T) {
	t.Setenv("HL_PRIVATE_KEY", "")
	_, err := run(t, referrerAction, "sign", "--network", "testnet")
	require.Error(t, err)
}

func TestAttachCmd(t *testing.T) {
	key, err := crypto.HexToECDSA(testPrivateKey[2:])
	require.NoError(t, err)
	digest := testnetDigest(t, actions.SetReferrer{Code: "ABC"})
	sig, err := crypto.Sign(digest.Bytes(), key)
	require.NoError(t, err)

	out, err := run(t, referrerAction, "attach", "--network", "testnet",
		"--nonce", "1690393044548", "--signature", hexutil.Encode(sig))
	require.NoError(t, err)

	payload, err := exchange.DecodeExchangePayload([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, uint64(27+sig[64]), payload.Signature.V())
	recovered, err := payload.Signature.Recover(digest)
	require.NoError(t, err)
	assert.Equal(t, testAddress, recovered.Hex())
}

func TestSignCmdSend(t *testing.T) {
	t.Setenv("HL_PRIVATE_KEY", testPrivateKey)

	var posts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
		assert.Equal(t, types.EXCHANGE, r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"ok","response":{"type":"default"}}`))
	}))
	defer server.Close()

	out, err := run(t, referrerAction, "sign", "--base-url", server.URL, "--send")
	require.NoError(t, err)
	assert.Equal(t, int32(1), posts.Load())
	assert.Contains(t, out, `"status": "ok"`)
}

func TestUsdSendCmdRejected(t *testing.T) {
	t.Setenv("HL_PRIVATE_KEY", testPrivateKey)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"err","response":"Insufficient balance"}`))
	}))
	defer server.Close()

	_, err := run(t, "", "usd-send", "--base-url", server.URL,
		"--destination", "0x1234567890123456789012345678901234567890", "--amount", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient balance")
}

func TestUsdSendCmdDryRun(t *testing.T) {
	t.Setenv("HL_PRIVATE_KEY", testPrivateKey)

	out, err := run(t, "", "usd-send", "--network", "testnet", "--dry-run",
		"--destination", "0x1234567890123456789012345678901234567890", "--amount", "1")
	require.NoError(t, err)

	payload, err := exchange.DecodeExchangePayload([]byte(out))
	require.NoError(t, err)
	a, err := payload.DecodeAction()
	require.NoError(t, err)
	usdSend, ok := a.(actions.UsdSend)
	require.True(t, ok)
	assert.Equal(t, "Testnet", usdSend.HyperliquidChain)
	assert.Equal(t, payload.Nonce, usdSend.Time)
}
