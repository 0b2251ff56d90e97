package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	testCases := []struct {
		input       string
		lens        []int
		known       string
		open        bool
		description string
	}{
		{"c_mp_t_r", []int{8}, "cmptr", false, "Single word"},
		{"B_A_______G/___E", []int{11, 4}, "bage", false, "Two groups, uppercase known letters"},
		{"a.b", []int{3}, "ab", false, "Dot wildcard"},
		{"arch%", []int{4}, "arch", true, "Open tail"},
		{"not/c___", []int{3, 4}, "notc", false, "Phrase"},
		{"_", []int{1}, "", false, "Single wildcard"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			spec, err := Compile(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.lens, spec.GroupLens())
			assert.Equal(t, tc.known, spec.Known())
			assert.Equal(t, tc.open, spec.IsOpen())
		})
	}
}

func TestCompileInvalid(t *testing.T) {
	testCases := []struct {
		input       string
		description string
	}{
		{"", "Empty"},
		{"%", "Only open tail"},
		{"ab//c", "Zero length middle group"},
		{"/abc", "Leading delimiter"},
		{"abc/", "Trailing delimiter"},
		{"ab3", "Digit is not expanded by Compile"},
		{"a-b", "Hyphen"},
		{"ab%c", "Open tail in the middle"},
		{"caf\xc3\xa9", "Non ASCII letter"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			_, err := Compile(tc.input)
			assert.ErrorIs(t, err, ErrInvalidPattern)
		})
	}
}

func TestExpand(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"3f3", "___f___"},
		{"3/x5", "___/x_____"},
		{"11/z4", "___________/z____"},
		{"11 z4", "___________/z____"},
		{"3e4", "___e____"},
		{"14x", "______________x"},
		{"15", "_______________"},
		{"  L_KE  M_G_C ", "l_ke/m_g_c"},
		{"arch%", "arch%"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Expand(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	got, err := Expand("64")
	require.NoError(t, err)
	assert.Len(t, got, MaxRun)
}

func TestExpandRejectsLongRuns(t *testing.T) {
	inputs := []string{
		"65",
		"1024",
		"2000000000",
		"9999999999999999999a",
		"18446744073709551620a",
		"3f 100",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := Expand(input)
			assert.ErrorIs(t, err, ErrInvalidPattern)
			assert.Empty(t, got)

			_, err = Parse(input)
			assert.ErrorIs(t, err, ErrInvalidPattern)
		})
	}
}

func TestParse(t *testing.T) {
	spec, err := Parse("a d3 3k")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 4}, spec.GroupLens())
	assert.Equal(t, "a/d___/___k", spec.String())
	assert.Equal(t, 9, spec.Len())
}

func TestKnownPrefix(t *testing.T) {
	spec, err := Compile("br_ng")
	require.NoError(t, err)
	assert.Equal(t, "br", spec.KnownPrefix())

	spec, err = Compile("_rch")
	require.NoError(t, err)
	assert.Equal(t, "", spec.KnownPrefix())

	spec, err = Compile("ab/c_")
	require.NoError(t, err)
	assert.Equal(t, "abc", spec.KnownPrefix())
}

func TestSpecIsImmutable(t *testing.T) {
	spec, err := Compile("ab_")
	require.NoError(t, err)

	groups := spec.Groups()
	groups[0][0] = Known('z')
	slots := spec.Slots()
	slots[1] = Any

	assert.Equal(t, "ab_", spec.String())
}

func TestWildcards(t *testing.T) {
	spec := Wildcards(6)
	assert.Equal(t, 6, spec.Len())
	assert.Equal(t, "______", spec.String())
	assert.Equal(t, "", spec.Known())
}
