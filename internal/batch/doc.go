// Package batch assesses many health profiles from a YAML file.
//
// A profiles file looks like:
//
//	profiles:
//	  - name: alex
//	    weight: 70
//	    height: 170
//	    age: 25
//	    sex: male
//	    units: metric
//	    activity: moderately_active
//	    goal: lose
//
// Omitted sex, units, activity and goal fall back to Defaults. Profiles are
// assessed concurrently with a bounded errgroup; results keep file order and
// a failing profile does not stop the others.
package batch
