// meta/meta.go
package meta

import "time"

// SAMPLES defines the number of hands drawn when a pool is too large to enumerate.
const SAMPLES = 300

// EXHAUSTIVE_LIMIT defines the largest C(pool, 5) enumerated in full.
const EXHAUSTIVE_LIMIT = 252

// TIME_BUDGET bounds a single search.
const TIME_BUDGET = 200 * time.Millisecond

// SEED defines the default random seed.
const SEED = 1

// EXPERIMENT_DIR is where experiment records are written.
const EXPERIMENT_DIR = "experiments/results"
