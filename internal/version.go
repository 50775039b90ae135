package internal

// Version is the decktrans release
const Version = "0.3.0"
