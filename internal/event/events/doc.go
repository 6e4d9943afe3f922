// Package events declares the strongly-typed event payloads and topics
// published across the application: document lifecycle, fold activity,
// and configuration changes.
package events
