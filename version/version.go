package version

// Version is the current version of the boxtree module.
const Version = "0.1.0"
