// Package roles defines the ordered access levels used by the session core:
// read_only < user < admin. Unknown roles rank below everything, so a
// corrupted or forged role value can never pass a requirement check.
package roles
