package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpcMock creates a test HTTP server that serves a fixed JSON-RPC response
// per method. Pass method→result pairs; any unknown method returns an RPC error.
func rpcMock(t *testing.T, responses map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
			ID     int    `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if result, ok := responses[req.Method]; ok {
			json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
				"jsonrpc": "2.0",
				"id":      req.ID,
				"result":  result,
			})
		} else {
			json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
				"jsonrpc": "2.0",
				"id":      req.ID,
				"error":   map[string]interface{}{"code": -32601, "message": "method not found"},
			})
		}
	}))
}

func TestGetBalance(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getBalance": "0xde0b6b3a7640000", // 1 ETH
	})
	defer srv.Close()

	c := NewEVMClient(srv.URL)
	bal, err := c.GetBalance("0xabc")
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", bal.String())
}

func TestGetBlockNumber(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_blockNumber": "0x10",
	})
	defer srv.Close()

	c := NewEVMClient(srv.URL)
	n, err := c.GetBlockNumber()
	require.NoError(t, err)
	assert.Equal(t, uint64(16), n)
}

func TestCallContract(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_call": "0x0000000000000000000000000000000000000000000000000000000000000001",
	})
	defer srv.Close()

	c := NewEVMClient(srv.URL)
	result, err := c.CallContract("0xcontract", "0xdata")
	require.NoError(t, err)
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000001", result)
}

func TestGetTransactionReceipt_Pending(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getTransactionReceipt": nil,
	})
	defer srv.Close()

	c := NewEVMClient(srv.URL)
	receipt, err := c.GetTransactionReceipt("0xabc")
	require.NoError(t, err)
	assert.Nil(t, receipt, "pending tx has no receipt")
}

func TestGetTransactionReceipt_Mined(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getTransactionReceipt": map[string]interface{}{
			"status":      "0x1",
			"blockNumber": "0x2a",
			"gasUsed":     "0x5208",
		},
	})
	defer srv.Close()

	c := NewEVMClient(srv.URL)
	receipt, err := c.GetTransactionReceipt("0xabc")
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, uint64(1), receipt.Status)
	assert.Equal(t, uint64(42), receipt.BlockNumber)
	assert.Equal(t, uint64(21000), receipt.GasUsed)
}

func TestWaitForReceipt_Timeout(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getTransactionReceipt": nil,
	})
	defer srv.Close()

	c := NewEVMClient(srv.URL)
	_, err := c.WaitForReceipt("0xabc", 10*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not mined")
}

func TestCall_RevertDataSurfacedInError(t *testing.T) {
	// Revert data must survive into the error string so named contract
	// errors can be decoded from the selector.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID int `json:"id"`
		}
		json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
			"jsonrpc": "2.0",
			"id":      req.ID,
			"error": map[string]interface{}{
				"code":    3,
				"message": "execution reverted",
				"data":    "0x3ee5aeb5",
			},
		})
	}))
	defer srv.Close()

	c := NewEVMClient(srv.URL)
	_, err := c.CallContract("0xcontract", "0xdata")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execution reverted")
	assert.Contains(t, err.Error(), "0x3ee5aeb5")
}

func TestGetLogs(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getLogs": []map[string]interface{}{
			{
				"address":         "0xcontract",
				"topics":          []string{"0xtopic0"},
				"data":            "0x",
				"blockNumber":     "0x64",
				"transactionHash": "0xhash",
				"logIndex":        "0x0",
			},
		},
	})
	defer srv.Close()

	c := NewEVMClient(srv.URL)
	logs, err := c.GetLogs("0xcontract", nil, "0x1", "latest")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "0xhash", logs[0].TxHash)
	assert.Equal(t, uint64(100), logs[0].BlockNum())
}

func TestChainID(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_chainId": "0x14a34", // 84532 = Base Sepolia
	})
	defer srv.Close()

	c := NewEVMClient(srv.URL)
	id, err := c.ChainID()
	require.NoError(t, err)
	assert.Equal(t, int64(84532), id)
}

func TestPing(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_blockNumber": "0x64",
	})
	defer srv.Close()

	c := NewEVMClient(srv.URL)
	latency, block, err := c.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), block)
	assert.Greater(t, latency, time.Duration(0))
}

func TestPing_ContextCanceled(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_blockNumber": "0x64",
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewEVMClient(srv.URL).Ping(ctx)
	require.Error(t, err)
}

func TestEstimateGas(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_estimateGas": "0x5208",
	})
	defer srv.Close()

	c := NewEVMClient(srv.URL)
	gas, err := c.EstimateGas("0xfrom", "0xto", "0xdata", nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(21000), gas)
}
