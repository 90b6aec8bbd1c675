// Package testing provides deterministic time and display list snapshots
// for control tests.
//
// # Animation
//
// Install a fake clock and step the animation tickers by hand:
//
//	clk := vtesting.UseFakeClock(t)
//	button.HandlePointer(down)
//	vtesting.Pump(clk, 50*time.Millisecond, 16*time.Millisecond)
//	vtesting.Settle(clk, time.Second)
//
// # Snapshots
//
// Serialize a paint call and compare it with a golden file:
//
//	snap := vtesting.Capture(button.Size(), button.Paint)
//	snap.MatchesFile(t, "testdata/button.json")
//
// Update golden files with:
//
//	VEILAR_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import vtesting "github.com/veilar-ui/veilar/pkg/testing"
package testing
