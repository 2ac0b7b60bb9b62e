// Package identity implements session.IdentityGateway.
//
// Local keeps accounts in the device database and checks passwords with
// Argon2id. Firebase talks to the Identity Toolkit REST API. Both report
// failures as *Error values whose text is the message shown to the user.
package identity
