package contract

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// Test fixture around the mock host: a fake ENF token contract with plain
// balances, plus helpers to switch caller identity and block time. Abort
// panics are recovered explicitly; state rollback is the host's job, so
// tests that rely on it snapshot/restore around the aborting call.

const (
	tokenContractID = "contract:enf-token"
	selfContractID  = "contract:enfineo"
	ownerAddr       = "hive:owner"
	aliceAddr       = "hive:alice"
	bobAddr         = "hive:bob"

	// a fixed anchor so maturity and window math stays readable
	baseTime = int64(1_750_000_000)
)

type testToken struct {
	balances map[string]Amount
	burned   Amount
	failNext bool
}

func (tt *testToken) handle(method, payload string) *string {
	if tt.failNext {
		tt.failNext = false
		return strptr("rejected")
	}
	parts := strings.Split(payload, "|")
	amt := func(i int) Amount {
		v, _ := strconv.ParseInt(parts[i], 10, 64)
		return Amount(v)
	}
	switch method {
	case "transfer":
		tt.balances[selfContractID] -= amt(1)
		tt.balances[parts[0]] += amt(1)
	case "transfer_from":
		if tt.balances[parts[0]] < amt(2) {
			return strptr("insufficient")
		}
		tt.balances[parts[0]] -= amt(2)
		tt.balances[parts[1]] += amt(2)
	case "burn":
		tt.balances[parts[0]] -= amt(1)
		tt.burned += amt(1)
	default:
		return nil
	}
	return strptr("ok")
}

var txCounter int

// as switches the env to a sender and block time and bumps tx.id so the
// contract's per-tx env cache refreshes.
func as(sender string, unixTime int64) {
	txCounter++
	sdk.Mock.SetSender(sender)
	sdk.Mock.SetTimestamp(strconv.FormatInt(unixTime, 10))
	sdk.Mock.NextTx("tx" + strconv.Itoa(txCounter))
}

// setupContract resets the host, wires the fake token and runs contract_init
// as the owner. Everyone starts with a comfortable balance.
func setupContract(t *testing.T) *testToken {
	t.Helper()
	sdk.ResetMock()
	tt := &testToken{balances: map[string]Amount{
		ownerAddr:      1_000_000,
		aliceAddr:      1_000_000,
		bobAddr:        1_000_000,
		selfContractID: 1_000_000,
	}}
	sdk.Mock.Handlers[tokenContractID] = tt.handle
	as(ownerAddr, baseTime)
	res := ContractInit(strptr(tokenContractID))
	require.Equal(t, "initialized", *res)
	return tt
}

// fundPool tops the reward pool up as the owner.
func fundPool(t *testing.T, amount Amount) {
	t.Helper()
	as(ownerAddr, baseTime)
	AddRewardToPool(strptr(strconv.FormatInt(int64(amount), 10)))
}

// mustAbort runs fn expecting an Abort whose message contains want. State is
// NOT restored; callers that emulate the host revert snapshot around it.
func mustAbort(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected abort containing %q", want)
		ae, ok := r.(sdk.AbortError)
		require.True(t, ok, "panic was not an AbortError: %v", r)
		require.Contains(t, ae.Msg, want)
	}()
	fn()
}

// pipe joins payload fields the way every entrypoint expects them.
func pipe(fields ...string) *string {
	return strptr(strings.Join(fields, "|"))
}

func amt(v Amount) string { return strconv.FormatInt(int64(v), 10) }
