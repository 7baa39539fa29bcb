// Package meet provides the authenticated core of a small video-meeting
// backend: communication-token issuance, user profile upsert and read, and
// meeting session creation.
//
// Handlers:
//   - Each operation is a message/handler pair. Handlers re-verify the caller
//     identity from the invocation context, never from the payload, and report
//     failures through go-errors categories (auth, authz, bad input, not
//     found, internal).
//   - UpsertUserHandler is the administrative exception: it takes the target
//     uid from the payload and requires no caller identity.
//
// Stores and collaborators:
//   - Profiles and Sessions wrap a Bun database; per-document writes run in a
//     single transaction and upserts are deterministic read-modify-write.
//   - Directory abstracts the third-party token/identity service. The bundled
//     TokenDirectory signs HS256 tokens locally and mirrors profile data to a
//     registration endpoint best-effort; mirror failures are logged, never
//     surfaced.
//
// The package ships no server. RegisterMeetRoutes exposes the handlers on any
// go-router registrar when an HTTP surface is wanted.
package meet
