// Package iso20022 carries the wire-format document models for the bank
// gateways (camt.052/053/054 statements and notifications, pain.001 payment
// initiation, camt.060 reporting requests) and the codec that moves them to
// and from XML text.
package iso20022

import (
	"encoding/xml"
	"errors"
	"strings"

	"github.com/pensionbase/bankcore/internal/domain"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

// Marshal serializes a document with an XML declaration, no indentation.
// Receiving gateways validate against published XSDs, so element order is
// fixed by struct field order in this package.
func Marshal(v any) (string, error) {
	out, err := xml.Marshal(v)
	if err != nil {
		return "", &domain.CodecError{Op: "marshal", Err: err}
	}
	return xmlHeader + string(out), nil
}

// Unmarshal decodes untrusted bank payloads. DOCTYPE declarations and
// processing directives are rejected before decoding; entity expansion is
// limited to the predefined XML entities. Bank gateways never send DTDs, so
// any directive is treated as an injection attempt.
func Unmarshal(data string, v any) error {
	if strings.TrimSpace(data) == "" {
		return &domain.CodecError{Op: "unmarshal", Err: errors.New("empty document")}
	}

	if err := rejectDirectives(data); err != nil {
		return err
	}

	dec := xml.NewDecoder(strings.NewReader(data))
	dec.Strict = true
	if err := dec.Decode(v); err != nil {
		return &domain.CodecError{Op: "unmarshal", Err: err}
	}
	return nil
}

func rejectDirectives(data string) error {
	probe := xml.NewDecoder(strings.NewReader(data))
	probe.Strict = true
	for {
		tok, err := probe.Token()
		if err != nil {
			// io.EOF means the probe pass ran clean; anything else is
			// malformed XML and will be reported identically by Decode.
			return nil
		}
		if _, ok := tok.(xml.Directive); ok {
			return &domain.CodecError{Op: "unmarshal", Err: errors.New("document contains a DTD or directive")}
		}
	}
}

// RootNamespace returns the default namespace of the document's root
// element. Used to route raw gateway messages to the right extractor without
// decoding the whole body.
func RootNamespace(data string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(data))
	dec.Strict = true
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", &domain.CodecError{Op: "sniff namespace", Err: err}
		}
		if _, ok := tok.(xml.Directive); ok {
			return "", &domain.CodecError{Op: "sniff namespace", Err: errors.New("document contains a DTD or directive")}
		}
		if start, ok := tok.(xml.StartElement); ok {
			if start.Name.Space == "" {
				return "", &domain.CodecError{Op: "sniff namespace", Err: errors.New("root element has no namespace")}
			}
			return start.Name.Space, nil
		}
	}
}
