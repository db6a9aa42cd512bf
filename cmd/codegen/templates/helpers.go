package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// typeParams(2) -> "T0, T1"
func typeParams(count int) string {
	return prefixedStrings("T", count)
}

// valueArgs(2) -> "v0, v1"
func valueArgs(count int) string {
	return prefixedStrings("v", count)
}

// valueParams(2) -> "v0 T0, v1 T1"
func valueParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i)
		sb.WriteString("v")
		sb.WriteString(n)
		sb.WriteString(" T")
		sb.WriteString(n)
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// castArgs(2) -> "args[0].(T0), args[1].(T1)"
func castArgs(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i)
		sb.WriteString("args[")
		sb.WriteString(n)
		sb.WriteString("].(T")
		sb.WriteString(n)
		sb.WriteString(")")
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// zeroReturns(2) -> "zero0, zero1"
func zeroReturns(count int) string {
	return prefixedStrings("zero", count)
}

// waitResults(1) -> "T0", waitResults(2) -> "(T0, T1)"
func waitResults(count int) string {
	if count == 1 {
		return "T0"
	}
	return "(" + typeParams(count) + ")"
}

// waitCtxResults(2) -> "(T0, T1, error)"
func waitCtxResults(count int) string {
	return "(" + typeParams(count) + ", error)"
}
