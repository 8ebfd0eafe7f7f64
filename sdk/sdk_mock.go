//go:build !wasm

package sdk

import (
	"fmt"
)

// Native stand-in for the wasm host so contract logic runs under plain
// `go test`. Keeps the exact same exported surface as sdk.go and adds a few
// knobs (Mock) that tests use to shape the environment.

// AbortError is the panic payload raised by Abort on the mock host. The wasm
// host traps instead; tests recover it to assert revert reasons.
type AbortError struct {
	Msg string
}

func (e AbortError) Error() string {
	return "abort: " + e.Msg
}

// MockHost holds everything the host would otherwise own: the kv store, the
// execution env and the callee contracts reachable via ContractCall.
type MockHost struct {
	State    map[string]string
	Env      Env
	Logs     []string
	Handlers map[string]func(method, payload string) *string
}

// Mock is the singleton host instance the wrapper functions talk to.
var Mock = NewMockHost()

// NewMockHost builds a clean host with an empty state and a default env.
func NewMockHost() *MockHost {
	return &MockHost{
		State: map[string]string{},
		Env: Env{
			ContractId: "contract:enfineo",
			TxId:       "tx0",
			BlockId:    "block0",
			Timestamp:  "2025-01-01T00:00:00",
			Sender:     Sender{Address: "hive:someone"},
		},
		Handlers: map[string]func(method, payload string) *string{},
	}
}

// ResetMock swaps in a fresh host; call it at the top of every test.
func ResetMock() *MockHost {
	Mock = NewMockHost()
	return Mock
}

// SetSender points the env at a different caller for the next calls.
func (m *MockHost) SetSender(addr string) {
	m.Env.Sender = Sender{Address: Address(addr)}
}

// SetTimestamp overrides block.timestamp (unix seconds or RFC3339 both work).
func (m *MockHost) SetTimestamp(ts string) {
	m.Env.Timestamp = ts
}

// NextTx bumps tx.id so per-tx caches in the contract refresh.
func (m *MockHost) NextTx(id string) {
	m.Env.TxId = id
}

// Snapshot copies the kv store so a test harness can roll back after aborts,
// mirroring the host-side revert semantics.
func (m *MockHost) Snapshot() map[string]string {
	cp := make(map[string]string, len(m.State))
	for k, v := range m.State {
		cp[k] = v
	}
	return cp
}

// Restore puts a snapshot back in place of the current kv store.
func (m *MockHost) Restore(snap map[string]string) {
	m.State = snap
}

// Log appends to the captured log lines and echoes for debugging.
func Log(s string) {
	Mock.Logs = append(Mock.Logs, s)
	fmt.Println("SDK log:", s)
}

// Abort mimics the host trap: it panics with AbortError and the test harness
// is responsible for restoring the pre-call state snapshot.
func Abort(msg string) {
	panic(AbortError{Msg: msg})
}

func StateSetObject(key string, value string) {
	Mock.State[key] = value
}

func StateGetObject(key string) *string {
	val, ok := Mock.State[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(Mock.State, key)
}

func GetEnv() Env {
	return Mock.Env
}

func GetEnvKey(key string) *string {
	switch key {
	case "block.timestamp":
		return &Mock.Env.Timestamp
	case "tx.id":
		return &Mock.Env.TxId
	case "contract.id":
		return &Mock.Env.ContractId
	default:
		return nil
	}
}

func ContractStateGet(contractId string, key string) *string {
	handler, ok := Mock.Handlers[contractId]
	if !ok {
		return nil
	}
	return handler("__read:"+key, "")
}

func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	handler, ok := Mock.Handlers[contractId]
	if !ok {
		return nil
	}
	return handler(method, payload)
}
