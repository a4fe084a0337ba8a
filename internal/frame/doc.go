// Package frame implements the direct stiffness method for plane frames
// built from straight, prismatic beam-column members.
//
// The pipeline is:
//
//   - [LocalStiffness]: 6x6 Euler-Bernoulli element matrix in member axes
//   - [Transformation]: 6x6 rotation from global to member axes
//   - [Assemble]: superposition of Tᵀ·K·T into the structure matrix
//   - [Solve]: partition into free and fixed DOFs and solve K_RR·u_R = P_R
//   - [EndForces]: member end actions from the solved displacements
//
// [Analyze] runs the whole pipeline for a [Model]. Restrained DOFs hold
// zero unless listed in Model.Settlements, which [SolvePrescribed] moves to
// the load side as -K_RF·u_F.
//
// # DOF numbering
//
// Node i owns DOFs 3i (ux), 3i+1 (uy) and 3i+2 (rz). Numbers are always
// derived through [DOF]; nothing stores them.
//
// # Sign convention
//
// [EndForce] components are the actions of the nodes on the member, in
// member axes: forces positive along local +x (start to end) and local +y,
// moments positive counter-clockwise. A member in tension therefore has
// N1 < 0 and N2 > 0; [EndForce.Axial] reports N2 so tension reads positive.
//
// # Thread Safety
//
// All functions are pure. Independent models may be analysed concurrently.
package frame
