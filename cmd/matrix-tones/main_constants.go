package main

// Files are written to the working directory.
const outputDir = "."
