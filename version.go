package redismodels

// Version is the current version of the redismodels library and the rmodels tool.
const Version = "0.3.0"
