// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

/*
Package search composes one search request end to end.

Service.Search runs a fixed, linear pipeline:

 1. Convert the optional start time into a one-day window.
 2. Derive the cache key from (query, count, window) and look it up.
 3. On a miss, call newsfeed.search and store the response.
 4. Rank the items by similarity to the query.
 5. Extract geotags from the unranked items, count them per place and
    render the map.

Failures after step 1 never abort the page. Upstream errors yield an empty
result with Degraded set and a user-facing Notice; ranking and map errors
keep whatever was computed. Every failure is logged and counted under a
distinct cause (see the Cause constants).

# Caching

ResponseCache has two implementations: MemoryCache over internal/cache and
BadgerResponseCache over an on-disk badger store. Both hold a response for
the configured TTL and treat backend errors as misses.
*/
package search
