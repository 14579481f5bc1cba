// Command fasta drives the two worked examples of the forward-backward
// splitting solver from the command line: max-norm clustering of the
// two-moons dataset, and ℓ₁ sparse recovery. Each run executes the three
// solver modes concurrently and writes comparison plots.
package main

func main() { Execute() }
