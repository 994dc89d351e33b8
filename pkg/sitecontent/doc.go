// Package sitecontent provides the content core for the MarkasAI marketing
// site: typed repositories for blog posts, case studies, products,
// testimonials, media records, and site settings, persisted as whole JSON
// documents through a pluggable key/value Store. Implementations of the Store
// (memory, filesystem, Badger, S3) are provided under storage subpackages.
//
// Persistence Model
//
// Each collection is one document under a fixed Key. Reads that miss (the
// key is absent, the backend fails, or the document does not parse) seed the
// collection's default content and carry on; every write replaces the whole
// document. Concurrent writers therefore resolve last-write-wins at document
// granularity, which is the intended trade-off for this write volume.
// Storage failures never surface through the repository API: ReadDocument and
// WriteDocument log them and degrade, and NewFallbackStore keeps a failed
// durable backend serving from memory for the life of the process.
package sitecontent
