// Package environment names the deployment stage a process runs in and
// carries it through request contexts.
//
// Parse accepts the usual spellings ("prod", "production", "dev", ...) and
// falls back to Development. Middleware stores the stage in each request
// context, and LoggerExtractor adds it to log records.
package environment
