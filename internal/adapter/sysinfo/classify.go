package sysinfo

import "strings"

// virtualFstypes are pseudo filesystems that never represent real storage.
var virtualFstypes = map[string]bool{
	"tmpfs":    true,
	"devtmpfs": true,
	"squashfs": true,
	"overlay":  true,
	"efivarfs": true,
	"proc":     true,
	"sysfs":    true,
	"cgroup":   true,
	"cgroup2":  true,
}

// skipPartition reports whether a mount should be hidden from the dashboard:
// virtual filesystems and the EFI boot partition.
func skipPartition(device, fstype, mountpoint string) bool {
	if virtualFstypes[fstype] {
		return true
	}
	for _, virtual := range []string{"udev", "tmpfs", "devtmpfs", "overlay", "squashfs", "efivarfs"} {
		if strings.Contains(device, virtual) {
			return true
		}
	}
	return strings.HasPrefix(mountpoint, "/boot/efi")
}

var localFstypes = map[string]bool{
	"ext4": true, "ext3": true, "ext2": true,
	"xfs": true, "btrfs": true, "zfs": true,
	"ntfs": true, "vfat": true, "exfat": true,
	"apfs": true, "hfs": true,
}

var smbMountHints = []string{"smb", "samba", "cifs", "windows", "nas", "share"}
var nfsMountHints = []string{"nfs", "network"}

// classifyFilesystem labels a mount with an icon and a human type, derived
// from the filesystem type first, the device spelling second and the mount
// path as a last resort.
func classifyFilesystem(fstype, device, mountpoint string) (icon, kind string) {
	ft := strings.ToLower(fstype)
	mp := strings.ToLower(mountpoint)

	switch {
	case ft == "cifs" || ft == "smb" || ft == "samba":
		return "🌐", "SMB"
	case strings.Contains(device, "//"):
		return "🌐", "SMB"
	case ft == "nfs" || ft == "nfs4":
		return "🖥️", "NFS"
	case strings.Contains(device, ":") && strings.Contains(device, "/"):
		return "🖥️", "NFS"
	case strings.Contains(ft, "fuse.sshfs"):
		return "🔐", "SSHFS"
	case strings.Contains(ft, "fuse"):
		if containsAny(mp, smbMountHints) {
			return "🌐", "SMB (FUSE)"
		}
		if containsAny(mp, nfsMountHints) {
			return "🖥️", "NFS (FUSE)"
		}
		return "🔗", "FUSE"
	case localFstypes[ft]:
		switch mountpoint {
		case "/":
			return "💾", "System"
		case "/boot":
			return "🔧", "Boot"
		default:
			return "💽", "Local"
		}
	case containsAny(mp, smbMountHints):
		return "🌐", "SMB"
	case containsAny(mp, nfsMountHints):
		return "🖥️", "NFS"
	default:
		return "📁", "Other"
	}
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
