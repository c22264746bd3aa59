// Package remote implements the HTTP client for the task-execution
// service. Every operation is a single round trip with no internal
// retry or caching; callers own all retry and polling policy.
package remote
