// Package monitor implements the multi-entity metrics dashboard.
//
// Each monitored entity (a server, a container, this machine) reports a
// Sample per tick: CPU percent, RAM in GB and upload/download speed in Mbps.
// A Tracker keeps a bounded history window per (entity, signal) pair and the
// renderer lays every entity out as a fixed-height text block:
//
//	           System 1
//	------------------------------
//	CPU:       50.0 %
//	RAM:       8.00 GB
//	NetSpeed:
//	  Upload:     5.00 Mbps   ▁▃▅█
//	  Download:  20.00 Mbps   ▂▂▅█
//
// Blocks are merged side by side into one frame.
//
// # History bars
//
// Bars use 8 block glyphs (▁▂▃▄▅▆▇█). Every value is quantized against the
// largest value currently in its window, floored at 1.0, so the scale follows
// the data as old samples fall out of the window.
//
// # Ownership
//
// Buffers and Trackers carry no locks. A Scene is driven by a single display
// loop; producers on other goroutines hand over whole batches which the loop
// applies between renders.
package monitor
