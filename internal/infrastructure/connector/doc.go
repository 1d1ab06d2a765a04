// Package connector implements the object storage the platform uploads to.
// SpacesConnector talks to DigitalOcean Spaces through the S3 API.
package connector
