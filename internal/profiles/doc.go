// Package profiles implements session.ProfileStore.
//
// Every backend writes the same document, {uid, email, createdAt}, keyed
// by uid with overwrite semantics: writing the same uid twice leaves one
// record holding the latest values.
//
//   - SQLiteStore: the profiles table of the local database.
//   - PostgresStore: a profiles table in a shared Postgres database.
//   - MongoStore: the "user" collection of a MongoDB database.
//   - S3Store: one JSON object per user under a key prefix.
package profiles
