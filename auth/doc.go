// Package auth simulates a login session for the storefront.
//
// NOT FOR PRODUCTION. Any email and password pair logs in: the configured
// admin and superadmin pairs receive elevated roles, everything else is a
// plain user. Passwords are compared in clear text and never hashed, and there
// is no server-side verification of identity. Tokens issued here only gate the
// demo admin area.
package auth
