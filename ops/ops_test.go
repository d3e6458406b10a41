// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontlang"
	"kontlang/ops"
)

func scalar(v any) kontlang.Value { return kontlang.Scalar{Payload: v} }

func TestArithmeticOps(t *testing.T) {
	host := ops.New()

	v, err := host.Op("op:add", []kontlang.Value{scalar(1.0), scalar(2.0)})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.(kontlang.Scalar).Payload)

	v, err = host.Op("op:sub", []kontlang.Value{scalar(5.0), scalar(2.0)})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.(kontlang.Scalar).Payload)

	v, err = host.Op("op:mul", []kontlang.Value{scalar(6.0), scalar(7.0)})
	require.NoError(t, err)
	assert.Equal(t, 42.0, v.(kontlang.Scalar).Payload)

	v, err = host.Op("op:mod", []kontlang.Value{scalar(10.0), scalar(3.0)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.(kontlang.Scalar).Payload)
}

func TestComparisonOps(t *testing.T) {
	host := ops.New()

	v, err := host.Op("op:eq", []kontlang.Value{scalar(2.0), scalar(2.0)})
	require.NoError(t, err)
	assert.Equal(t, true, v.(kontlang.Scalar).Payload)

	v, err = host.Op("op:lt", []kontlang.Value{scalar(1.0), scalar(2.0)})
	require.NoError(t, err)
	assert.Equal(t, true, v.(kontlang.Scalar).Payload)
}

func TestBooleanOps(t *testing.T) {
	host := ops.New()

	v, err := host.Op("op:and", []kontlang.Value{scalar(true), scalar(false)})
	require.NoError(t, err)
	assert.Equal(t, false, v.(kontlang.Scalar).Payload)

	v, err = host.Op("op:not", []kontlang.Value{scalar(true)})
	require.NoError(t, err)
	assert.Equal(t, false, v.(kontlang.Scalar).Payload)
}

func TestUnknownOpFails(t *testing.T) {
	host := ops.New()
	_, err := host.Op("op:frobnicate", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kontlang.ErrUnknownOp)
}

func TestOperandTypeMismatchFails(t *testing.T) {
	host := ops.New()
	_, err := host.Op("op:add", []kontlang.Value{scalar(true), scalar(1.0)})
	require.Error(t, err)
}

func TestLiteralNormalizesIntToFloat(t *testing.T) {
	host := ops.New()
	v, err := host.Literal(7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v.(kontlang.Scalar).Payload)
}

func TestLiteralRejectsUnknownPayload(t *testing.T) {
	host := ops.New()
	_, err := host.Literal(struct{}{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kontlang.ErrBadLiteral)
}
