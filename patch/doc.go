// Package patch applies RFC 6902 JSON patches and RFC 7386 merge patches to
// IR nodes.
//
// Documents travel through JSON, so undefined object members are dropped,
// undefined array slots become null and the keys of patched objects come
// back sorted.
package patch
