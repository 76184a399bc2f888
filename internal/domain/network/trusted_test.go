package network

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTrustedSetContains verifies exact-equality membership.
func TestTrustedSetContains(t *testing.T) {
	t.Parallel()

	set := NewTrustedSet([]Identifier{
		"REDE_SEGURA_1",
		"Corporate_WiFi",
		"Home_Office_Net",
	})

	require.Equal(t, 3, set.Size())
	require.True(t, set.Contains("Corporate_WiFi"))
	require.False(t, set.Contains("WIFI_DA_PRACA"))

	// Exact equality only: case and prefixes must not match.
	require.False(t, set.Contains("corporate_wifi"))
	require.False(t, set.Contains("Corporate_WiF"))
	require.False(t, set.Contains("Corporate_WiFi "))
}

// TestTrustedSetSnapshot ensures the snapshot is isolated from the set.
func TestTrustedSetSnapshot(t *testing.T) {
	t.Parallel()

	members := []Identifier{"REDE_SEGURA_1", "Corporate_WiFi"}
	set := NewTrustedSet(members)

	snapshot := set.Snapshot()
	require.Equal(t, members, snapshot)

	// Mutating the snapshot or the source slice must not affect the set.
	snapshot[0] = "tampered"
	members[1] = "tampered"
	require.True(t, set.Contains("REDE_SEGURA_1"))
	require.True(t, set.Contains("Corporate_WiFi"))
}

// TestTrustedSetConcurrentReads exercises the lock discipline with parallel readers.
func TestTrustedSetConcurrentReads(t *testing.T) {
	t.Parallel()

	set := NewTrustedSet([]Identifier{"REDE_SEGURA_1", "Corporate_WiFi", "Home_Office_Net"})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				require.True(t, set.Contains("Home_Office_Net"))
				require.False(t, set.Contains("WIFI_DA_PRACA"))
			}
		}()
	}

	wg.Wait()
}
