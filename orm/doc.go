/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
Each bucket contains only one type of object and persists it through the
object's own binary codec. Dense integer ids are produced by a Sequence,
so records assigned sequentially can be addressed in O(1) by position.
*/
package orm
