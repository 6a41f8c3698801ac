// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - NavigationService: adjacent and boundary lookups, link rendering
//   - ImportService: loads content dumps through a ContentWriter
//   - SettingsService: reads and validates configuration
package services
