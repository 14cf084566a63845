// Package service contains the application-specific use cases and business
// logic. It orchestrates the credential gate and the upstream-backed
// generator to fulfill flashcard generation requests, enforcing the
// single-in-flight rule and translating upstream signals (like an invalid
// credential) into gate transitions.
package service
