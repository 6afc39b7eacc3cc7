package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanHandle(t *testing.T) {
	assert.Equal(t, "jane", CleanHandle("@jane"))
	assert.Equal(t, "jane", CleanHandle("  @jane  "))
	assert.Equal(t, "jane", CleanHandle("jane"))
	assert.Equal(t, "", CleanHandle("  "))
}

func TestParseManualInput(t *testing.T) {
	input := "First post about coffee\n\n  Second post about design  \nThird post\n"
	p := ParseManualInput(input, "someone")

	assert.Equal(t, "someone", p.Handle)
	assert.Equal(t, []string{"First post about coffee", "Second post about design", "Third post"}, p.Posts)
	assert.Equal(t, "First post about coffee", p.Bio)
	assert.Equal(t, 1000, p.Followers)
	assert.Equal(t, 500, p.Following)
}

func TestParseManualInput_LongBioTruncated(t *testing.T) {
	long := strings.Repeat("x", 300)
	p := ParseManualInput(long, "someone")
	assert.Len(t, p.Bio, 160)
}

func TestParseManualInput_Empty(t *testing.T) {
	p := ParseManualInput("", "")
	assert.Equal(t, "demo_user", p.Handle)
	assert.Empty(t, p.Posts)
	assert.Empty(t, p.Bio)
}

func TestDemoProfile_DeveloperKeyword(t *testing.T) {
	p := DemoProfile("demo_dev")
	require.NotNil(t, p)
	assert.Equal(t, "demo_dev", p.Handle)
	assert.Contains(t, p.Bio, "Staff Engineer")
	assert.NotEmpty(t, p.Posts)
}

func TestDemoProfile_Selection(t *testing.T) {
	tests := []struct {
		handle  string
		bioWord string
	}{
		{"founder_jess", "Founder & CEO"},
		{"sheila_builds", "Founder & CEO"},
		{"code_monkey", "Staff Engineer"},
		{"studio_anna", "Designer"},
		{"gym_rat_99", "coach"},
		{"@random_person", "Builder"},
	}
	for _, tt := range tests {
		p := DemoProfile(tt.handle)
		assert.Contains(t, strings.ToLower(p.Bio), strings.ToLower(tt.bioWord), "handle %s", tt.handle)
	}
}

func TestDemoProfile_CopiesRecord(t *testing.T) {
	a := DemoProfile("demo_dev")
	b := DemoProfile("other_dev")
	assert.Equal(t, "demo_dev", a.Handle)
	assert.Equal(t, "other_dev", b.Handle)
	assert.Equal(t, a.Bio, b.Bio)
}

func TestParseFollowerCount(t *testing.T) {
	assert.Equal(t, 1234, parseFollowerCount("1,234 Followers - stylist"))
	assert.Equal(t, 1200000, parseFollowerCount("1.2M Followers"))
	assert.Equal(t, 45000, parseFollowerCount("45K Followers"))
	assert.Equal(t, 0, parseFollowerCount("no numbers here"))
}
