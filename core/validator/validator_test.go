package validator_test

import (
	"strings"
	"testing"

	"github.com/goto/lineage/core/validator"
	"gotest.tools/assert"
)

func TestValidateStruct(t *testing.T) {
	type DummyStruct struct {
		VarOneOf    string `json:"varoneof" validate:"omitempty,oneof=type1 type2 type3"`
		VarInt      int    `json:"varint" validate:"omitempty,gte=0"`
		VarMin      int    `json:"varmin" validate:"min=1"`
		VarRequired string `json:"varrequired" validate:"required"`
	}

	type TestCase struct {
		Description string
		Struct      interface{}
		ErrString   string
	}

	testCases := []TestCase{
		{
			Description: "return error with supported values in oneof type validation",
			Struct: DummyStruct{
				VarOneOf:    "random",
				VarMin:      1,
				VarRequired: "x",
			},
			ErrString: "error value \"random\" for key \"varoneof\" not recognized, only support \"type1 type2 type3\"",
		},
		{
			Description: "return error should greater than 0 in integer type validation",
			Struct: DummyStruct{
				VarInt:      -1,
				VarMin:      1,
				VarRequired: "x",
			},
			ErrString: "varint cannot be less than 0",
		},
		{
			Description: "return joined errors for required and min validation",
			Struct:      DummyStruct{},
			ErrString:   "varmin cannot be less than 1 and varrequired is required",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			err := validator.ValidateStruct(tc.Struct)
			assert.Equal(t, tc.ErrString, err.Error())
		})
	}
}

type mode string

func (m mode) String() string { return strings.ToLower(string(m)) }

func TestValidateStruct_NamedValue(t *testing.T) {
	type DummyStruct struct {
		Mode mode `json:"mode" validate:"oneof=READ WRITE"`
	}

	err := validator.ValidateStruct(DummyStruct{Mode: "APPEND"})
	assert.Error(t, err, "error value \"APPEND\" for key \"mode\" not recognized, only support \"READ WRITE\"")
}

func TestValidateStructValid(t *testing.T) {
	type DummyStruct struct {
		VarRequired string `json:"varrequired" validate:"required"`
	}

	assert.NilError(t, validator.ValidateStruct(DummyStruct{VarRequired: "ok"}))
}

func TestValidateOneOf(t *testing.T) {
	type TestCase struct {
		Description string
		Value       string
		Enums       []string
		ErrString   string
	}

	testCases := []TestCase{
		{
			Description: "return error with supported values",
			Value:       "random",
			Enums:       []string{"type1", "type2", "type3"},
			ErrString:   "error value \"random\" not recognized, only support \"type1 type2 type3\"",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			err := validator.ValidateOneOf(tc.Value, tc.Enums...)
			assert.Equal(t, tc.ErrString, err.Error())
		})
	}
}
