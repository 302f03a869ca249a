package settings

import (
	"slices"
	"strings"
	"testing"

	"github.com/julianstephens/journl/internal/cli/clitest"
	"github.com/julianstephens/journl/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestSettingsShow(t *testing.T) {
	ctx, out := clitest.New(t)
	if err := (&SettingsShowCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Current Settings:", "Theme:                 morning", "Focus Mode:            false"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in %q", want, out.String())
		}
	}
}

func TestSettingsNotify(t *testing.T) {
	tests := []struct {
		name    string
		cmd     SettingsNotifyCmd
		wantErr bool
		check   func(models.NotificationSettings) bool
	}{
		{
			name:  "enable digest",
			cmd:   SettingsNotifyCmd{MorningDigest: ptr(true), MorningTime: ptr("07:15")},
			check: func(n models.NotificationSettings) bool { return n.MorningDigest && n.MorningTime == "07:15" },
		},
		{
			name:  "disable nudge",
			cmd:   SettingsNotifyCmd{Nudge: ptr(false)},
			check: func(n models.NotificationSettings) bool { return !n.NudgeWhenAtRisk },
		},
		{
			name:    "unpadded time",
			cmd:     SettingsNotifyCmd{EveningTime: ptr("9:00")},
			wantErr: true,
		},
		{
			name:    "out of range time",
			cmd:     SettingsNotifyCmd{MorningTime: ptr("25:00")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := clitest.New(t)
			err := tt.cmd.Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			n := clitest.State(t, ctx).NotificationSettings
			if tt.wantErr {
				if n != models.DefaultNotificationSettings() {
					t.Errorf("expected settings unchanged, got %+v", n)
				}
				return
			}
			if !tt.check(n) {
				t.Errorf("unexpected settings %+v", n)
			}
		})
	}
}

func TestSettingsNotifyNoChanges(t *testing.T) {
	ctx, out := clitest.New(t)
	if err := (&SettingsNotifyCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No changes specified") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestSettingsTimezoneAndWindow(t *testing.T) {
	ctx, _ := clitest.New(t)

	if err := (&SettingsTimezoneCmd{Timezone: "Not/AZone"}).Run(ctx); err == nil {
		t.Error("expected invalid timezone to be rejected")
	}
	if err := (&SettingsTimezoneCmd{Timezone: "UTC"}).Run(ctx); err != nil {
		t.Fatalf("timezone failed: %v", err)
	}

	for _, days := range []int{0, 366} {
		if err := (&SettingsWindowCmd{Days: days}).Run(ctx); err == nil {
			t.Errorf("expected window %d to be rejected", days)
		}
	}
	if err := (&SettingsWindowCmd{Days: 7}).Run(ctx); err != nil {
		t.Fatalf("window failed: %v", err)
	}

	s := clitest.State(t, ctx).Settings
	if s.Timezone != "UTC" || s.ConsistencyWindowDays != 7 {
		t.Errorf("unexpected settings %+v", s)
	}
}

func TestTheme(t *testing.T) {
	ctx, out := clitest.New(t)

	if err := (&ThemeCmd{Theme: "neon"}).Run(ctx); err == nil {
		t.Error("expected unknown theme to be rejected")
	}
	if err := (&ThemeCmd{Theme: "candlelight"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if got := clitest.State(t, ctx).Theme; got != models.ThemeCandlelight {
		t.Errorf("expected candlelight, got %s", got)
	}

	out.Reset()
	if err := (&ThemeCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != "Theme: candlelight" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestFocus(t *testing.T) {
	ctx, out := clitest.New(t)

	for i, want := range []bool{true, false} {
		if err := (&FocusCmd{}).Run(ctx); err != nil {
			t.Fatal(err)
		}
		if got := clitest.State(t, ctx).FocusMode; got != want {
			t.Errorf("toggle %d: expected focus %v, got %v", i, want, got)
		}
	}
	if !strings.Contains(out.String(), "Focus mode on") || !strings.Contains(out.String(), "Focus mode off.") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestTags(t *testing.T) {
	ctx, out := clitest.New(t)

	if err := (&TagAddCmd{Tag: " travel "}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&TagAddCmd{Tag: "travel"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&TagRemoveCmd{Tag: "work"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&TagRemoveCmd{Tag: "missing"}).Run(ctx); err == nil {
		t.Error("expected removing an unknown tag to fail")
	}

	tags := clitest.State(t, ctx).Tags
	if slices.Contains(tags, "work") {
		t.Errorf("expected work to be removed, got %v", tags)
	}
	count := 0
	for _, tag := range tags {
		if tag == "travel" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected travel exactly once, got %v", tags)
	}

	out.Reset()
	if err := (&TagListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if got := strings.Fields(out.String()); !slices.Equal(got, tags) {
		t.Errorf("expected list %v, got %v", tags, got)
	}
}
