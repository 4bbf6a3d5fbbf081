package launch

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCommandLine(t *testing.T) {
	got := BuildCommandLine(`C:\Tools`, `C:\My Images\disk.iso`, "-HideDrive")
	assert.Equal(t,
		`-ExecutionPolicy Bypass -NoProfile -WindowStyle Hidden -File "C:\Tools\Expand-IsoDiskImage.ps1" -ImagePath "C:\My Images\disk.iso" -HideDrive`,
		got)
}

func TestBuildCommandLineNoFlagKeepsTrailingSpace(t *testing.T) {
	got := BuildCommandLine(`C:\Tools`, `D:\disk.iso`, "")
	assert.True(t, strings.HasSuffix(got, `-ImagePath "D:\disk.iso" `), got)
}

func TestBuildCommandLinePrefixTokenNotNormalized(t *testing.T) {
	got := BuildCommandLine(`C:\Tools`, `D:\disk.iso`, "-h")
	assert.True(t, strings.HasSuffix(got, `"D:\disk.iso" -h`), got)
}

// An embedded quote is not escaped; it terminates the quoted argument.
func TestBuildCommandLineEmbeddedQuote(t *testing.T) {
	got := BuildCommandLine(`C:\Tools`, `C:\a"b.iso`, "")
	assert.Contains(t, got, `-ImagePath "C:\a"b.iso" `)
}

func TestScriptDir(t *testing.T) {
	tests := []struct {
		self string
		want string
	}{
		{`C:\Tools\expand-iso.exe`, `C:\Tools`},
		{`C:\Program Files\ISO Tools\expand-iso.exe`, `C:\Program Files\ISO Tools`},
		{`C:\expand-iso.exe`, `C:\`},
		{`C:expand-iso.exe`, `C:`},
		{`expand-iso.exe`, ``},
		{`\expand-iso.exe`, `\`},
		{`C:/Tools/expand-iso.exe`, `C:\Tools`},
		{`\\server\share\bin\expand-iso.exe`, `\\server\share\bin`},
		{`\\server\share\expand-iso.exe`, `\\server\share`},
		{`\\server\share`, ``},
		{`\\server`, ``},
		{`C:\`, ``},
		{`C:`, ``},
		{``, ``},
	}

	for _, tt := range tests {
		t.Run(tt.self, func(t *testing.T) {
			assert.Equal(t, tt.want, ScriptDir(tt.self))
		})
	}
}

func TestNeedsElevation(t *testing.T) {
	admin := func() (bool, error) { return true, nil }
	standard := func() (bool, error) { return false, nil }
	broken := func() (bool, error) { return false, errors.New("token query failed") }

	assert.True(t, NeedsElevation("-HideDrive", standard))
	assert.False(t, NeedsElevation("-HideDrive", admin))
	assert.False(t, NeedsElevation("", standard))
	assert.False(t, NeedsElevation("", admin))
	assert.True(t, NeedsElevation("-h", broken))
	assert.True(t, NeedsElevation("-h", nil))
}

func TestNeedsElevationSkipsQueryWithoutFlag(t *testing.T) {
	called := false
	NeedsElevation("", func() (bool, error) {
		called = true
		return false, nil
	})
	assert.False(t, called)
}
