package domain

import "strings"

// OperationType tags an audit record with the mutation that produced it,
// following the <ENTITY>_INSERTED / _UPDATED / _DELETED convention.
type OperationType string

// OperationFor derives the audit operation tag for an entity and action.
func OperationFor(entity EntityType, action Action) OperationType {
	suffix := ""
	switch action {
	case ActionCreate:
		suffix = "_INSERTED"
	case ActionUpdate:
		suffix = "_UPDATED"
	case ActionDelete:
		suffix = "_DELETED"
	}
	return OperationType(strings.ToUpper(string(entity)) + suffix)
}
