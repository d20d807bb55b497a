package reconcile

import (
	"testing"

	"stock-audit/core/manifest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_Unselected(t *testing.T) {
	s := NewSession()

	assert.Equal(t, ModeUnselected, s.Mode())
	assert.Empty(t, s.Missing())

	out, ok := s.Observe("a1")
	require.True(t, ok)
	assert.Equal(t, OutcomeCaptured, out.Kind)
}

func TestSelectMode(t *testing.T) {
	t.Run("InvalidMode", func(t *testing.T) {
		s := NewSession()
		assert.ErrorIs(t, s.SelectMode(ModeUnselected), ErrInvalidMode)
		assert.ErrorIs(t, s.SelectMode(Mode("bogus")), ErrInvalidMode)
	})

	transitions := []struct {
		name string
		from Mode
		to   Mode
	}{
		{"AuditToAudit", ModeAudit, ModeAudit},
		{"AuditToQuick", ModeAudit, ModeQuickCapture},
		{"QuickToQuick", ModeQuickCapture, ModeQuickCapture},
		{"QuickToAudit", ModeQuickCapture, ModeAudit},
	}

	for _, tt := range transitions {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			require.NoError(t, s.SelectMode(tt.from))
			if tt.from == ModeAudit {
				require.NoError(t, s.LoadExpected(widgets()))
			}
			s.Observe("ABC123")
			s.Observe("ABC123")
			s.Observe("QQQ000")
			s.ConsumeNext()

			require.NoError(t, s.SelectMode(tt.to))

			assert.Equal(t, tt.to, s.Mode())
			assert.Equal(t, 0, s.Expected())
			assert.Equal(t, 0, s.ScannedCount())
			assert.Equal(t, 0, s.Matched())
			assert.Equal(t, 0, s.Duplicates())
			assert.Equal(t, 0, s.Handled())
			assert.Empty(t, s.ExtrasSorted())
			assert.Empty(t, s.Missing())
		})
	}
}

func TestLoadExpected(t *testing.T) {
	t.Run("RequiresAuditMode", func(t *testing.T) {
		s := NewSession()
		require.NoError(t, s.SelectMode(ModeQuickCapture))
		assert.ErrorIs(t, s.LoadExpected(widgets()), ErrNotAuditMode)

		assert.ErrorIs(t, NewSession().LoadExpected(widgets()), ErrNotAuditMode)
	})

	t.Run("RetestsScannedIdentifiers", func(t *testing.T) {
		s := newAuditSession(t, widgets())
		s.Observe("ABC123")
		s.Observe("QQQ000")
		require.Equal(t, 1, s.Matched())
		require.Equal(t, []string{"QQQ000"}, s.ExtrasSorted())

		// QQQ000 becomes expected, ABC123 drops off the manifest.
		require.NoError(t, s.LoadExpected(manifest.Expected{
			"QQQ000": {Part: "WidgetQ"},
			"XYZ999": {Part: "WidgetB"},
		}))

		assert.Equal(t, 1, s.Matched())
		assert.Equal(t, []string{"ABC123"}, s.ExtrasSorted())
		assert.Equal(t, []string{"XYZ999"}, s.Missing())
		assert.True(t, s.IsExpected("QQQ000"))
		assert.False(t, s.IsExpected("ABC123"))
		assertInvariants(t, s)
	})

	t.Run("ScansBeforeManifestAreRetested", func(t *testing.T) {
		s := NewSession()
		require.NoError(t, s.SelectMode(ModeAudit))
		s.Observe("abc123")
		s.Observe("nope")

		require.NoError(t, s.LoadExpected(widgets()))

		assert.Equal(t, 1, s.Matched())
		assert.Equal(t, []string{"NOPE"}, s.ExtrasSorted())
		assertInvariants(t, s)
	})

	t.Run("ClearsHandled", func(t *testing.T) {
		s := newAuditSession(t, widgets())
		next, ok := s.ConsumeNext()
		require.True(t, ok)
		assert.NotContains(t, s.Missing(), next)

		require.NoError(t, s.LoadExpected(widgets()))

		assert.Equal(t, 0, s.Handled())
		assert.Contains(t, s.Missing(), next)
	})

	t.Run("DuplicatesSurviveReload", func(t *testing.T) {
		s := newAuditSession(t, widgets())
		s.Observe("ABC123")
		s.Observe("abc123")

		require.NoError(t, s.LoadExpected(widgets()))

		assert.Equal(t, 1, s.Duplicates())
		out, _ := s.Observe("ABC123")
		assert.Equal(t, OutcomeDuplicate, out.Kind)
	})

	t.Run("EmptyManifestFallsBackToCapture", func(t *testing.T) {
		s := newAuditSession(t, widgets())
		s.Observe("QQQ000")

		require.NoError(t, s.LoadExpected(nil))

		assert.Empty(t, s.ExtrasSorted())
		out, ok := s.Observe("ZZZ111")
		require.True(t, ok)
		assert.Equal(t, OutcomeCaptured, out.Kind)
		assertInvariants(t, s)
	})
}

func TestSnapshot(t *testing.T) {
	t.Run("Audit", func(t *testing.T) {
		s := newAuditSession(t, manifest.Expected{
			"ABC123": {Part: "WidgetA"},
			"XYZ999": {Part: "WidgetB"},
			"NOPART": {},
		})
		s.Observe("xyz999")
		s.Observe("xyz999")
		s.Observe("extra1")
		s.ConsumeNext()

		snap := s.Snapshot()
		sum := snap.Summary

		assert.Equal(t, "audit", sum.Mode)
		require.NotNil(t, sum.Expected)
		assert.Equal(t, 3, *sum.Expected)
		assert.Equal(t, 1, *sum.Matched)
		assert.Equal(t, 1, *sum.Missing)
		assert.Equal(t, 1, sum.Handled)
		assert.Equal(t, 1, sum.Extra)
		assert.Equal(t, 1, sum.Duplicates)
		assert.Equal(t, 2, sum.Scanned)

		assert.Equal(t, []string{"EXTRA1", "XYZ999"}, snap.Scanned)
		assert.Equal(t, []string{"EXTRA1"}, snap.Extras)
		assert.Equal(t, []string{"ABC123"}, snap.Missing)
		assert.Equal(t, map[string]string{"ABC123": "WidgetA", "XYZ999": "WidgetB"}, snap.Parts)
	})

	t.Run("QuickCapture", func(t *testing.T) {
		s := NewSession()
		require.NoError(t, s.SelectMode(ModeQuickCapture))
		s.Observe("b2")
		s.Observe("a1")

		snap := s.Snapshot()

		assert.Equal(t, "quick", snap.Summary.Mode)
		assert.Nil(t, snap.Summary.Expected)
		assert.Nil(t, snap.Summary.Matched)
		assert.Nil(t, snap.Summary.Missing)
		assert.Equal(t, []string{"A1", "B2"}, snap.Scanned)
		assert.Empty(t, snap.Missing)
		assert.Nil(t, snap.Parts)
	})
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("audit")
	require.NoError(t, err)
	assert.Equal(t, ModeAudit, m)

	m, err = ParseMode("quick")
	require.NoError(t, err)
	assert.Equal(t, ModeQuickCapture, m)

	_, err = ParseMode("")
	assert.ErrorIs(t, err, ErrInvalidMode)
}
