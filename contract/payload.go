package contract

import (
	"strconv"
	"strings"

	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// Entrypoint payloads are pipe-delimited field lists, mirroring the record
// codecs. Batch payloads join entries with ';'. Parsing failures abort
// immediately so the host rolls the transaction back before any state write.

// strptr returns a pointer for entrypoint return values.
func strptr(s string) *string { return &s }

// unwrapPayload aborts on missing payloads, otherwise hands back the string.
func unwrapPayload(payload *string) string {
	if payload == nil {
		sdk.Abort("payload missing")
	}
	return strings.TrimSpace(*payload)
}

// requireFields splits a payload and aborts unless it has exactly n fields.
func requireFields(payload *string, n int, usage string) []string {
	raw := unwrapPayload(payload)
	parts := strings.SplitN(raw, "|", n)
	if len(parts) != n {
		sdk.Abort("expected payload " + usage)
	}
	return parts
}

// parseAmountField parses a positive token amount field.
func parseAmountField(field string) Amount {
	v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil || v <= 0 {
		sdk.Abort("invalid amount " + field)
	}
	return Amount(v)
}

// parseIndexField parses a non-negative catalog or deposit index.
func parseIndexField(field string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
	if err != nil {
		sdk.Abort("invalid index " + field)
	}
	return v
}

// parseRateField parses an apr or penalty in RateDenominator units.
func parseRateField(field string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
	if err != nil || v > RateDenominator {
		sdk.Abort("invalid rate " + field)
	}
	return v
}

// parseDurationField parses a duration in seconds; 0 is the tombstone marker.
func parseDurationField(field string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil || v < 0 {
		sdk.Abort("invalid duration " + field)
	}
	return v
}

// parseTimestampField parses a unix or iso timestamp payload field.
func parseTimestampField(field string) int64 {
	v, ok := parseTimestamp(strings.TrimSpace(field))
	if !ok || v <= 0 {
		sdk.Abort("invalid timestamp " + field)
	}
	return v
}

// parseAddressField rejects empty addresses up front.
func parseAddressField(field string) sdk.Address {
	addr := AddressFromString(strings.TrimSpace(field))
	if addr.IsEmpty() {
		sdk.Abort(errEmptyAddress.Error())
	}
	return addr
}

// parseFlagField accepts 1/0 or true/false.
func parseFlagField(field string) bool {
	switch strings.TrimSpace(field) {
	case "1", "true":
		return true
	case "0", "false":
		return false
	}
	sdk.Abort("invalid flag " + field)
	return false
}

// splitBatch breaks a batched payload into per-entry field lists.
func splitBatch(payload *string, fieldsPerEntry int) [][]string {
	raw := unwrapPayload(payload)
	if raw == "" {
		sdk.Abort("empty batch")
	}
	entries := strings.Split(raw, ";")
	if len(entries) > MaxBatchSize {
		sdk.Abort("batch exceeds " + strconv.Itoa(MaxBatchSize) + " entries")
	}
	out := make([][]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "|", fieldsPerEntry)
		if len(parts) != fieldsPerEntry {
			sdk.Abort(errBatchMismatch.Error())
		}
		out = append(out, parts)
	}
	if len(out) == 0 {
		sdk.Abort("empty batch")
	}
	return out
}

// decodeRoleArgs parses the role management payload.
// Format: role|address
func decodeRoleArgs(payload *string) (Role, sdk.Address) {
	parts := requireFields(payload, 2, "role|address")
	n, err := strconv.ParseUint(parts[0], 10, 8)
	role := Role(n)
	if err != nil || role.String() == "unknown" {
		sdk.Abort("invalid role " + parts[0])
	}
	return role, parseAddressField(parts[1])
}
