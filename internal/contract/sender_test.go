package contract

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSigner returns fixed raw bytes without real cryptography.
type stubSigner struct {
	addr   string
	raw    []byte
	err    error
	signed int
}

func (s *stubSigner) Address() string { return s.addr }

func (s *stubSigner) SignTx(tx *types.Transaction, chainID *big.Int) ([]byte, error) {
	s.signed++
	return s.raw, s.err
}

var senderABI = []ABIEntry{
	{Name: "deposit", Type: "function", StateMutability: "payable"},
	{Name: "pause", Type: "function", StateMutability: "nonpayable"},
	{Name: "owner", Type: "function", StateMutability: "view",
		Outputs: []ABIParam{{Type: "address"}}},
}

func newTestSender(rpc *fakeRPC, signer *stubSigner) *Sender {
	return NewSender(rpc, "0xcontract", senderABI, signer, big.NewInt(84532))
}

func TestSender_Send(t *testing.T) {
	rpc := &fakeRPC{gas: 50000, sendHash: "0xhash"}
	signer := &stubSigner{addr: "0xfrom", raw: []byte{0x01, 0x02}}
	s := newTestSender(rpc, signer)

	hash, err := s.Send("deposit", big.NewInt(1000))
	require.NoError(t, err)
	assert.Equal(t, "0xhash", hash)
	assert.Equal(t, 1, signer.signed)
	require.Len(t, rpc.sentRaw, 1)
	assert.Equal(t, "0x0102", rpc.sentRaw[0])
}

func TestSender_RejectsReadFunction(t *testing.T) {
	s := newTestSender(&fakeRPC{}, &stubSigner{addr: "0xfrom"})
	_, err := s.Send("owner", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a write function")
}

func TestSender_RejectsValueOnNonPayable(t *testing.T) {
	s := newTestSender(&fakeRPC{}, &stubSigner{addr: "0xfrom"})
	_, err := s.Send("pause", big.NewInt(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not payable")
}

func TestSender_EstimationFailureBlocksBroadcast(t *testing.T) {
	rpc := &fakeRPC{gasErr: errors.New("execution reverted")}
	signer := &stubSigner{addr: "0xfrom", raw: []byte{0x01}}
	s := newTestSender(rpc, signer)

	_, err := s.Send("pause", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gas estimation failed")
	assert.Empty(t, rpc.sentRaw, "nothing broadcast after failed estimation")
	assert.Zero(t, signer.signed, "nothing signed after failed estimation")
}

func TestSender_SigningFailure(t *testing.T) {
	rpc := &fakeRPC{gas: 21000}
	signer := &stubSigner{addr: "0xfrom", err: errors.New("key unavailable")}
	s := newTestSender(rpc, signer)

	_, err := s.Send("pause", nil)
	require.Error(t, err)
	assert.Empty(t, rpc.sentRaw)
}
