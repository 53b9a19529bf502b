// Package monitor implements graphtop's live CPU and memory dashboard.
//
// # Key Components
//
//	Sampler    - Turns cumulative OS counters into utilization percentages
//	Source     - Reads raw counters (procfs, sysinfo(2), or gopsutil)
//	History    - Fixed-size ring of samples, one per graph column
//	Graph      - Draws a History as a bordered bar chart on a Canvas
//	Dashboard  - The tick loop tying the above to a terminal Backend
//
// # Tick Cycle
//
// The dashboard is single-threaded. Each tick:
//
//  1. Waits up to the tick period for input (the wait is the pacing)
//  2. Clears the screen buffer
//  3. Samples CPU and memory and pushes each into its History
//  4. Draws a readout line and a graph per metric, then the help line
//  5. Renders the frame
//
// An exit key (esc, ctrl+c), the terminal closing, or context cancellation
// ends the loop at the top of the next tick.
//
// # Layout
//
// With graph height H, metric k's readout sits on row r(k), its title on
// r(k)+1, and its bordered graph on rows r(k)+2 through r(k)+H+3, where
// r(0) = 1 and r(k+1) = r(k)+H+5.
//
// # Degraded Samples
//
// Read or parse failures are logged at debug level and the sample is 0.
// The dashboard never stops because a metric could not be read.
package monitor
