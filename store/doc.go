// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the access layer over the interview catalog schema.

# Store

A Store wraps the process-wide database handle opened at startup:

	st := store.New(conn)

Every method takes a context and is an independent, atomic unit of work.
Cascading deletes ride on single DELETE statements, so the storage
engine's implicit statement transaction keeps each cascade atomic.

# Tag Kinds

Category, Company, and Role share one row shape and one CRUD contract.
TagKind is the closed set selecting between them:

	cat, err := st.CreateTag(ctx, store.TagCategory, "Behavioral (General)")
	roles, err := st.ListTags(ctx, store.TagRole)

Tags list alphabetically. Questions and sessions list newest first.

# Errors

Three sentinel values classify expected failures:

  - ErrValidation: a required text field was empty
  - ErrNotFound: no row matched the id, or a referenced id does not exist
  - ErrConflict: a unique name/title collided

Check them with errors.Is; any other error is an internal storage fault
and should be surfaced opaquely. Update and delete report a missing row
as (false, nil), not as an error.

# Membership

Session membership is a set. AddQuestion verifies both ids exist
(ErrNotFound otherwise) and silently ignores a duplicate pair;
RemoveQuestion reports a missing pair as false.
*/
package store
