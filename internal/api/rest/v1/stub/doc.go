// Package stub holds the JSON request and response bodies of the v1 REST API.
// The handlers produce them and the admin API client decodes them.
package stub
