package shell

// Exported for testing.
var NewTailBuffer = newTailBuffer
