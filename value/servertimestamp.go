package value

// A server-timestamp sentinel is a map value standing in for a timestamp
// field whose final value the server has not yet assigned. It carries the
// client's local write time as an estimate and, optionally, the field's
// previous value for best-effort display.
const (
	TypeKey           = "__type__"
	LocalWriteTimeKey = "__local_write_time__"
	PreviousValueKey  = "__previous_value__"

	serverTimestampSentinel = "server_timestamp"
)

// ServerTimestamp builds a sentinel carrying localWriteTime. previous may be
// nil; if given, it is adopted.
func ServerTimestamp(localWriteTime Timestamp, previous *Value) *Value {
	res := EmptyMap()
	res.SetField(TypeKey, FromString(serverTimestampSentinel))
	res.SetField(LocalWriteTimeKey, FromTimestamp(localWriteTime))
	if previous != nil {
		res.SetField(PreviousValueKey, previous)
	}
	return res
}

// IsServerTimestamp reports whether v is shaped like a server-timestamp
// sentinel: a map of at most 3 entries whose TypeKey entry is the string
// "server_timestamp".
func IsServerTimestamp(v *Value) bool {
	if v == nil || v.Kind != MapKind {
		return false
	}
	if len(v.Keys) > 3 {
		return false
	}
	for i, k := range v.Keys {
		if k == TypeKey {
			tv := v.Values[i]
			return tv.Kind == StringKind && tv.String == serverTimestampSentinel
		}
	}
	return false
}

// LocalWriteTime returns the client's local write time stored in a sentinel.
// Callers must have established IsServerTimestamp(v); it panics if the field
// is missing or not a timestamp, which signals an internal invariant failure
// rather than a recoverable condition.
func LocalWriteTime(v *Value) Timestamp {
	if lwt, ok := v.Field(LocalWriteTimeKey); ok && lwt.Kind == TimestampKind {
		return lwt.Time
	}
	panic("value: local write time not found")
}

// PreviousValue returns the field value the sentinel displaced, or nil if
// none was recorded.
func PreviousValue(v *Value) *Value {
	if prev, ok := v.Field(PreviousValueKey); ok {
		return prev
	}
	return nil
}
