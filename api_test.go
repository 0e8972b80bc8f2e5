package ucum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertPressure(t *testing.T) {
	got, err := Convert(100, "kPa", "mm[Hg]")
	require.NoError(t, err)
	assert.InDelta(t, 750.06, got, 0.01)
}

func TestConvertTemperature(t *testing.T) {
	got, err := Convert(25, "Cel", "[degF]")
	require.NoError(t, err)
	assert.InDelta(t, 77.0, got, 1e-9)
}

func TestConvertIncommensurableRejected(t *testing.T) {
	_, err := Convert(1, "kg", "s")
	require.Error(t, err)
	diag, ok := AsDiagnostic("kg", err)
	require.True(t, ok)
	assert.Equal(t, ErrIncommensurable, diag.Kind)
}

func TestValidateAcceptsWellFormedExpression(t *testing.T) {
	assert.NoError(t, Validate("kg.m/s2"))
}

func TestValidateRejectsUnknownUnit(t *testing.T) {
	err := Validate("xyzzy")
	require.Error(t, err)
	diag, ok := AsDiagnostic("xyzzy", err)
	require.True(t, ok)
	assert.Equal(t, ErrUnknownUnit, diag.Kind)
}

func TestAnalyseReportsKnownDerivedSymbol(t *testing.T) {
	info, err := Analyse("kg.m/s2")
	require.NoError(t, err)
	assert.Equal(t, "N", info.Display)
}

func TestIsComparableVolumeUnits(t *testing.T) {
	ok, err := IsComparable("L", "mm3")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsComparableIncommensurableUnits(t *testing.T) {
	ok, err := IsComparable("kg", "s")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnitMultiply(t *testing.T) {
	info, err := UnitMultiply("m", "m")
	require.NoError(t, err)
	assert.Equal(t, Dimension{dimLength: 2}, info.Dimension)
}

func TestUnitDivide(t *testing.T) {
	info, err := UnitDivide("m", "s")
	require.NoError(t, err)
	assert.Equal(t, Dimension{dimLength: 1, dimTime: -1}, info.Dimension)
}

func TestExplainMilligram(t *testing.T) {
	info, err := Explain("mg")
	require.NoError(t, err)
	assert.Equal(t, "g", info.Code)
	assert.Equal(t, "m", info.PrefixCode)
}

func TestExplainUnknownCodeSuggestsClosest(t *testing.T) {
	_, err := Explain("kgram")
	require.Error(t, err)
	var ucumErr *Error
	require.ErrorAs(t, err, &ucumErr)
	assert.NotEmpty(t, ucumErr.Suggest)
}

func TestConvertSameUnitIsIdentity(t *testing.T) {
	got, err := Convert(1, "m", "m")
	require.NoError(t, err)
	assert.True(t, math.Abs(got-1) < 1e-12)
}

func TestConvertArbitraryUnitAppliesPrefixFactor(t *testing.T) {
	got, err := Convert(1000, "[IU]", "k[IU]")
	require.NoError(t, err)
	assert.InDelta(t, 1, got, 1e-12)
}

func TestConvertMixedBracketedAtom(t *testing.T) {
	// k[IU] must lex as a single atom (prefix "k" + arbitrary unit "[IU]"),
	// not split into two tokens that trip "unexpected trailing input".
	got, err := Convert(1, "k[IU]", "[IU]")
	require.NoError(t, err)
	assert.InDelta(t, 1000, got, 1e-9)
}

func TestAnalyseEmptyExpressionIsDimensionlessUnity(t *testing.T) {
	info, err := Analyse("")
	require.NoError(t, err)
	assert.Equal(t, Dimension{}, info.Dimension)
	assert.InDelta(t, 1, info.Factor, 1e-12)
}

func TestConvertWithBackendDecimalExact(t *testing.T) {
	// A numeric literal ("10*-3") combined with an atom factor must not
	// panic when resolved entirely under the Decimal backend: both the
	// literal and the atom factor need to be built against the same
	// Number implementation.
	got, err := ConvertWithBackend(5, "10*-3.mol/L", "mol/m3", DecimalBackend)
	require.NoError(t, err)
	assert.InDelta(t, 5, got, 1e-9)
}
