package status

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/rileyhilliard/invdash/internal/errors"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode parses a status document. Object- and array-valued top-level keys
// become sections (arrays keyed by index); other top-level keys are kept as
// scalars. Key order follows the document.
func Decode(data []byte) (*Snapshot, error) {
	iter := jsonAPI.BorrowIterator(data)
	defer jsonAPI.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, errors.New(errors.ErrDecode,
			"Status document is not a JSON object",
			"The status endpoint should return something like {\"inverter\": {...}}")
	}

	snap := &Snapshot{}
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		switch it.WhatIsNext() {
		case jsoniter.ObjectValue:
			sec := &Section{Key: key}
			it.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
				sec.Set(field, readValue(it))
				return it.Error == nil
			})
			snap.SetSection(sec)
		case jsoniter.ArrayValue:
			sec := &Section{Key: key}
			i := 0
			it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
				sec.Set(strconv.Itoa(i), readValue(it))
				i++
				return it.Error == nil
			})
			snap.SetSection(sec)
		default:
			snap.SetScalar(key, readValue(it))
		}
		return it.Error == nil
	})

	if iter.Error != nil {
		return nil, errors.WrapWithCode(iter.Error, errors.ErrDecode,
			"Malformed status document",
			"The status endpoint returned invalid JSON")
	}

	return snap, nil
}

// readValue reads the next JSON value as a scalar Value.
func readValue(it *jsoniter.Iterator) Value {
	switch it.WhatIsNext() {
	case jsoniter.NilValue:
		it.ReadNil()
		return Null()
	case jsoniter.NumberValue:
		n := it.ReadNumber()
		f, err := n.Float64()
		if err != nil {
			return String(string(n))
		}
		return Value{Kind: KindNumber, Num: f, Raw: string(n)}
	case jsoniter.StringValue:
		return String(it.ReadString())
	case jsoniter.BoolValue:
		return Bool(it.ReadBool())
	default:
		return Value{Kind: KindComposite, Raw: string(it.SkipAndReturnBytes())}
	}
}
