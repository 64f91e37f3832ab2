// Package device is the compute substrate the blocked APSP engine runs on.
//
// It mirrors the object model of accelerator runtimes such as OpenCL so the
// engine is written against a driver stack rather than a concrete loop nest:
//
//	Driver  → Device   (discovery, capabilities)
//	Device  → Context  (owner of every other object)
//	Context → Queue    (single in-order command stream)
//	        → Program  (built once from a Source; yields Kernels)
//	        → Buffer   (device-resident float32 / int32 storage)
//
// The bundled driver, CPU(), executes NDRange launches on a worker pool.
// Each work-group is handed to one worker, which runs the kernel body for the
// whole group; kernels therefore realize intra-group barriers as sweep
// boundaries inside the body. Distinct work-groups of one launch run
// concurrently and never synchronize with each other.
//
// The queue is in-order: a command starts only after the previous one has
// completed, so consecutive launches observe each other's effects. Blocking
// reads and writes are ordered with launches in the same way.
//
// Every failure is a *Error carrying the failing Op and a driver Status code.
// The CPU driver can inject failures at any Op (WithFault), which lets callers
// test their cleanup paths without real hardware.
package device
