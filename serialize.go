package qurecode

import (
	"bytes"
	"encoding/base64"
	"encoding/gob"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Serialization selects the strategy used to turn non-string input into the
// string payload handed to the QR codec. String input always bypasses it.
type Serialization int

const (
	// SerializationJSON marshals the input with encoding/json. The default.
	SerializationJSON Serialization = iota
	// SerializationXML marshals the input with encoding/xml.
	SerializationXML
	// SerializationYAML marshals the input with yaml.v3.
	SerializationYAML
	// SerializationBinary gob-encodes the input and base64-encodes the
	// resulting bytes so the payload stays printable.
	SerializationBinary
	// SerializationString uses the input's default string formatting.
	SerializationString
)

// String returns the strategy name as accepted by ParseSerialization.
func (s Serialization) String() string {
	switch s {
	case SerializationJSON:
		return "json"
	case SerializationXML:
		return "xml"
	case SerializationYAML:
		return "yaml"
	case SerializationBinary:
		return "binary"
	case SerializationString:
		return "string"
	}
	return fmt.Sprintf("Serialization(%d)", int(s))
}

// ParseSerialization converts a strategy name into a Serialization.
// Case-insensitive.
func ParseSerialization(s string) (Serialization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return SerializationJSON, nil
	case "xml":
		return SerializationXML, nil
	case "yaml":
		return SerializationYAML, nil
	case "binary":
		return SerializationBinary, nil
	case "string":
		return SerializationString, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSerialization, s)
}

// serializePayload normalizes arbitrary input into the string the codec will
// encode. Strings pass through verbatim regardless of the selected strategy.
func serializePayload(data any, s Serialization) (string, error) {
	if str, ok := data.(string); ok {
		return str, nil
	}

	switch s {
	case SerializationJSON:
		b, err := json.Marshal(data)
		if err != nil {
			return "", fmt.Errorf("marshal payload as json: %w", err)
		}
		return string(b), nil
	case SerializationXML:
		b, err := xml.Marshal(data)
		if err != nil {
			return "", fmt.Errorf("marshal payload as xml: %w", err)
		}
		return string(b), nil
	case SerializationYAML:
		b, err := yaml.Marshal(data)
		if err != nil {
			return "", fmt.Errorf("marshal payload as yaml: %w", err)
		}
		return string(b), nil
	case SerializationBinary:
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(data); err != nil {
			return "", fmt.Errorf("gob-encode payload: %w", err)
		}
		return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
	case SerializationString:
		return fmt.Sprintf("%v", data), nil
	}

	return "", fmt.Errorf("%w: %s", ErrInvalidSerialization, s)
}
