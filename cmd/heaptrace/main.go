// Command heaptrace replays malloc trace files against an allocator.Heap
// and reports utilization and invariant-check results.
package main

func main() {
	execute()
}
