package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMessageNotFound    = errors.New("message not found")
	ErrDuplicateMessage   = errors.New("duplicate gateway request id")
	ErrNoCloseBalance     = errors.New("statement has no CLOSE balance")
	ErrUnresolvedAccount  = errors.New("iban not present in account configuration")
	ErrUnknownMessageType = errors.New("unsupported message namespace")
	ErrInvalidPageParams  = errors.New("invalid page parameters")
	ErrInvalidDateRange   = errors.New("invalid date range")
)

// CodecError signals malformed XML: the payload could not be tokenized or
// decoded at all.
type CodecError struct {
	Op  string
	Err error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("xml codec: %s: %v", e.Op, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

// ParseError signals structurally valid XML that is missing required
// financial fields. It always surfaces to the caller; a silently dropped
// statement would corrupt reconciliation.
type ParseError struct {
	Bank   BankID
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse statement (%s): %s: %v", e.Bank, e.Reason, e.Err)
	}
	return fmt.Sprintf("parse statement (%s): %s", e.Bank, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ChannelError signals a notification delivery failure. It is confined to
// the notifier and never re-raised into the reconciliation path.
type ChannelError struct {
	Channel string
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("notification channel %s: %v", e.Channel, e.Err)
}

func (e *ChannelError) Unwrap() error { return e.Err }
